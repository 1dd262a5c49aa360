package fieldtype

import (
	"regexp"
	"strings"
)

// exactPatterns maps whole normalized field names to types. Order matters:
// the first matching entry wins.
var exactPatterns = []struct {
	fieldType FieldType
	pattern   *regexp.Regexp
}{
	{Email, regexp.MustCompile(`^(email|e_mail|user_email|contact_email|email_address)$`)},
	{Password, regexp.MustCompile(`^(password|pass|pwd|user_password|new_password|confirm_password)$`)},
	{FirstName, regexp.MustCompile(`^(first_name|firstname|fname|given_name)$`)},
	{LastName, regexp.MustCompile(`^(last_name|lastname|lname|surname|family_name)$`)},
	{FullName, regexp.MustCompile(`^(full_name|fullname|name|display_name)$`)},
	{Phone, regexp.MustCompile(`^(phone|phone_number|mobile|mobile_number|tel|telephone)$`)},
	{Age, regexp.MustCompile(`^(age|user_age)$`)},
	{URL, regexp.MustCompile(`^(url|website|site|homepage|link)$`)},
	{Username, regexp.MustCompile(`^(username|user_name|login|handle|nickname)$`)},
	{ZipCode, regexp.MustCompile(`^(zip|zipcode|zip_code|postal|postal_code|postcode)$`)},
	{Country, regexp.MustCompile(`^(country|country_code|nation)$`)},
	{State, regexp.MustCompile(`^(state|province|region)$`)},
	{City, regexp.MustCompile(`^(city|town)$`)},
	{Address, regexp.MustCompile(`^(address|street|street_address|address_line_1|address1)$`)},
	{Company, regexp.MustCompile(`^(company|organization|organisation|employer|company_name)$`)},
	{Title, regexp.MustCompile(`^(title|job_title|position|role)$`)},
	{Date, regexp.MustCompile(`^(date|dob|date_of_birth|birth_date|birthday)$`)},
}

// Detect maps a field name to its semantic type. It is pure, total, and
// case-insensitive; unrecognized names resolve to Generic.
func Detect(fieldName string) FieldType {
	name := strings.ToLower(strings.TrimSpace(fieldName))
	if name == "" {
		return Generic
	}

	for _, entry := range exactPatterns {
		if entry.pattern.MatchString(name) {
			return entry.fieldType
		}
	}

	return fuzzyDetect(name)
}

// fuzzyDetect runs substring heuristics over the normalized name. The
// username check runs before the name checks so that "user_name" variants
// are not misread as person-name fields. Checks run on the raw normalized
// string, so punctuation like "user-email" or "first.name" does not block
// detection.
func fuzzyDetect(name string) FieldType {
	contains := func(sub string) bool { return strings.Contains(name, sub) }

	switch {
	case contains("email"):
		return Email
	case contains("password") || contains("pass"):
		return Password
	case contains("phone") || contains("mobile"):
		return Phone
	case contains("username") || contains("user_name") || contains("login"):
		return Username
	case contains("name") && contains("first"):
		return FirstName
	case contains("name") && contains("last"):
		return LastName
	case contains("name") && !contains("user"):
		return FullName
	case contains("age"):
		return Age
	case contains("url") || contains("website"):
		return URL
	case contains("zip") || contains("postal"):
		return ZipCode
	case contains("country"):
		return Country
	case contains("state") || contains("province"):
		return State
	case contains("city") || contains("town"):
		return City
	case contains("address") || contains("street"):
		return Address
	case contains("company") || contains("organization"):
		return Company
	case contains("title") || contains("position"):
		return Title
	case contains("date") || contains("birth"):
		return Date
	}

	return Generic
}
