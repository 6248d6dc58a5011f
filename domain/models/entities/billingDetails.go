package entities

// BillingDetails is the buyer-entered shipping and contact record. It is
// created once per checkout attempt and immutable once transactions are
// generated; every transaction of the checkout carries it verbatim.
type BillingDetails struct {
	FullName string `bson:"fullName"`
	Email    string `bson:"email"`
	Phone    string `bson:"phone"`
	Address  string `bson:"address"`
	City     string `bson:"city"`
	Province string `bson:"province"`
}

// MissingFields returns the names of the required fields that are empty.
// Full name, address and phone are the only completeness gate of the flow.
func (billing BillingDetails) MissingFields() []string {
	missing := make([]string, 0, 3)
	if billing.FullName == "" {
		missing = append(missing, "fullName")
	}
	if billing.Address == "" {
		missing = append(missing, "address")
	}
	if billing.Phone == "" {
		missing = append(missing, "phone")
	}
	return missing
}
