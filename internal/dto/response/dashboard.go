package response

type MonthlyRevenueResponse struct {
	Month  string `json:"month"`
	Amount string `json:"amount"`
}

// DashboardResponse is the data behind the admin overview cards and charts.
type DashboardResponse struct {
	TotalPatients      int64                    `json:"total_patients"`
	TotalAppointments  int64                    `json:"total_appointments"`
	BookedAppointments int64                    `json:"booked_appointments"`
	TotalRevenue       string                   `json:"total_revenue"`
	StatusBreakdown    map[string]int64         `json:"status_breakdown"`
	MonthlyRevenue     []MonthlyRevenueResponse `json:"monthly_revenue"`
}
