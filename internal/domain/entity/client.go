package entity

// Client destinatario de una cotización. Solo Name es obligatorio (lo exige el
// colaborador externo antes de invocar al compositor); los campos vacíos se
// imprimen como celdas en blanco, no se omiten.
type Client struct {
	Name    string
	Company string
	Address string
	Phone   string
	Email   string
}

// ReceiptClient identidad reducida del pagador de un comprobante: los
// comprobantes solo llevan nombre y celular, es un esquema distinto al de
// cotización, no un subconjunto casual.
type ReceiptClient struct {
	Name  string
	Phone string
}
