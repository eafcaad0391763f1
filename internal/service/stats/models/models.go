package models

// DashboardStatsResponse сводные счетчики для дашборда консоли
type DashboardStatsResponse struct {
	Bookings  BookingStats  `json:"bookings"`
	Providers ProviderStats `json:"providers"`
}

// BookingStats счетчики бронирований по статусам
type BookingStats struct {
	Pending    int64 `json:"pending"`
	Assigned   int64 `json:"assigned"`
	InProgress int64 `json:"inProgress"`
	Completed  int64 `json:"completed"`
	Cancelled  int64 `json:"cancelled"`
	Total      int64 `json:"total"`
}

// ProviderStats счетчики провайдеров по верификации
type ProviderStats struct {
	Verified   int64 `json:"verified"`
	Unverified int64 `json:"unverified"`
	Total      int64 `json:"total"`
}
