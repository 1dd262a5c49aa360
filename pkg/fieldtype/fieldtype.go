// Package fieldtype infers the semantic type of a form field from its name.
// Detection runs an exact-pattern pass over common naming conventions first,
// then falls back to substring heuristics, and always resolves to Generic.
package fieldtype

// FieldType is the semantic category of a form field. It drives the default
// structural constraints applied to the field's value.
type FieldType string

const (
	Email     FieldType = "email"
	Password  FieldType = "password"
	FirstName FieldType = "firstName"
	LastName  FieldType = "lastName"
	FullName  FieldType = "fullName"
	Phone     FieldType = "phone"
	Age       FieldType = "age"
	URL       FieldType = "url"
	Username  FieldType = "username"
	ZipCode   FieldType = "zipCode"
	Country   FieldType = "country"
	State     FieldType = "state"
	City      FieldType = "city"
	Address   FieldType = "address"
	Company   FieldType = "company"
	Title     FieldType = "title"
	Date      FieldType = "date"
	Generic   FieldType = "generic"
)

var known = map[FieldType]struct{}{
	Email: {}, Password: {}, FirstName: {}, LastName: {}, FullName: {},
	Phone: {}, Age: {}, URL: {}, Username: {}, ZipCode: {}, Country: {},
	State: {}, City: {}, Address: {}, Company: {}, Title: {}, Date: {},
	Generic: {},
}

// Valid reports whether t is one of the recognized field types.
func (t FieldType) Valid() bool {
	_, ok := known[t]
	return ok
}
