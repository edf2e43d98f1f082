package inventory

// Log messages
const (
	LogMsgGrantCalled       = "Grant called"
	LogMsgConsumeCalled     = "Consume called"
	LogMsgGachaCalled       = "DrawGacha called"
	LogMsgItemsGranted      = "Items granted"
	LogMsgItemConsumed      = "Item consumed"
	LogMsgGachaSettled      = "Gacha settled"
	LogMsgOperationRejected = "Inventory operation rejected"
	LogMsgOperationFailed   = "Inventory operation failed"
)

// Error message formats
const (
	ErrFmtNegativeQuantity = "%w: quantity %d must not be negative"
	ErrFmtUnknownItemID    = "%w: %d"
	ErrFmtDrawCountRange   = "%w: draw count %d must be between 1 and %d"
)

// consumeAmount is how many units a single consume removes
const consumeAmount = 1
