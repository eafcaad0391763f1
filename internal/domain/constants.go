package domain

// Формат даты бронирования в API и запросах к БД
const DateFormat = "2006-01-02" // YYYY-MM-DD

// providerHoldingStatuses статусы, в которых бронирование удерживает провайдера
// Этот сервис выполняет только переход pending -> assigned,
// остальные статусы принадлежат внешнему fulfillment-процессу
var providerHoldingStatuses = []BookingStatus{
	StatusAssigned,
	StatusInProgress,
	StatusCompleted,
}
