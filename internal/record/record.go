package record

// Sentinel is the designated value meaning "field not resolved". It is
// distinct from an empty string: an empty string never appears in a
// normalized record.
const Sentinel = "NA"

// Record maps schema field names to extracted values. A normalized record
// contains exactly the schema's field names, each either a recovered value
// or the sentinel.
type Record map[string]string

// Canonical field names. Append-only: once a name ships it stays valid for
// every later schema version (renames are modeled as deprecate-plus-add).
const (
	FieldPurchaseOrderNo = "purchase_order_no"
	FieldInvoiceNo       = "invoice_no"
	FieldOrderDate       = "order_date"
	FieldInvoiceDate     = "invoice_date"
	FieldCustomer        = "customer"
	FieldAddress         = "address"
	FieldProduct         = "product"
	FieldHSN             = "hsn"
	FieldQty             = "qty"
	FieldGrossAmount     = "gross_amount"
	FieldTotalAmount     = "total_amount"
	FieldSKU             = "sku"
	FieldSize            = "size"
	FieldColor           = "color"
	FieldPaymentType     = "payment_type"
	FieldCourier         = "courier"
)

// IsSet reports whether the field holds a resolved value (present and not
// the sentinel).
func (r Record) IsSet(field string) bool {
	v, ok := r[field]
	return ok && v != Sentinel && v != ""
}

// SetOnce writes value under field only when the field is still unset. It
// returns true when the write happened.
func (r Record) SetOnce(field, value string) bool {
	if r.IsSet(field) {
		return false
	}
	r[field] = value
	return true
}

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
