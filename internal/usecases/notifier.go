package usecases

// Notifier delivers real-time events to connected clients. Delivery is
// best-effort: implementations drop events for clients that are not
// connected and never block settlement.
type Notifier interface {
	NotifyUser(userID uint, event string, payload interface{})
	NotifyStation(stationID uint, event string, payload interface{})
	Broadcast(event string, payload interface{})
}

// Event names carried in the websocket envelope
const (
	EventWalletUpdated        = "wallet_updated"
	EventTransactionCompleted = "transaction_completed"
	EventStationStatusUpdate  = "station_status_update"
)
