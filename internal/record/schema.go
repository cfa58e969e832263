package record

// Schema is a versioned, ordered set of recognized field names. Versions are
// append-only: a later version carries every field of the earlier ones, in
// the same order, followed by its additions.
type Schema struct {
	version int
	fields  []string
}

var v1Fields = []string{
	FieldPurchaseOrderNo,
	FieldInvoiceNo,
	FieldOrderDate,
	FieldInvoiceDate,
	FieldCustomer,
	FieldAddress,
	FieldProduct,
	FieldHSN,
	FieldQty,
	FieldGrossAmount,
	FieldTotalAmount,
}

var v2Fields = append(append([]string{}, v1Fields...),
	FieldSKU,
	FieldSize,
	FieldColor,
	FieldPaymentType,
	FieldCourier,
)

// V1 is the original label field set.
func V1() Schema { return Schema{version: 1, fields: v1Fields} }

// V2 adds the SKU-table and shipping-metadata fields.
func V2() Schema { return Schema{version: 2, fields: v2Fields} }

// Current returns the schema the engine extracts against.
func Current() Schema { return V2() }

func (s Schema) Version() int { return s.version }

// Fields returns the field names in schema order. The slice is a copy.
func (s Schema) Fields() []string {
	out := make([]string, len(s.fields))
	copy(out, s.fields)
	return out
}

// Has reports whether name is a recognized field of this schema version.
func (s Schema) Has(name string) bool {
	for _, f := range s.fields {
		if f == name {
			return true
		}
	}
	return false
}

// Normalize produces a total record from a partial mapping: every schema
// field missing from partial is filled with the sentinel, and keys the
// schema does not recognize are dropped. Empty values count as unset.
// Normalize never fails; a nil partial yields an all-sentinel record.
func (s Schema) Normalize(partial Record) Record {
	out := make(Record, len(s.fields))
	for _, f := range s.fields {
		v := partial[f]
		if v == "" {
			v = Sentinel
		}
		out[f] = v
	}
	return out
}
