package shop

// Operator-facing validation messages, in the shop's language.
const (
	MsgCashRequired     = "Vui lòng nhập số tiền khách đưa"
	MsgCashInsufficient = "Số tiền không đủ. Còn thiếu "
)

// ValidateCashPayment checks the tendered cash against the order total and
// returns an operator-readable message, or "" when the payment is valid.
// A negative amount lands in the insufficient branch; keeping negatives out
// of the input is the caller's job.
func ValidateCashPayment(cashAmount, totalAmount int64) string {
	if cashAmount == 0 {
		return MsgCashRequired
	}
	if cashAmount < totalAmount {
		return MsgCashInsufficient + FormatPrice(totalAmount-cashAmount)
	}
	return ""
}

// CashError carries a cash validation message through an error return.
type CashError struct {
	Message string
}

func (e *CashError) Error() string { return e.Message }
