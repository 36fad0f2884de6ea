package authenticator

import (
	"fmt"
	"strconv"
)

// Profile is the provider's description of the authenticated principal.
// For Shopline it is the token info merged with the staff record under "staff".
type Profile map[string]interface{}

// Staff returns the nested staff object, or nil if there is none
func (p Profile) Staff() map[string]interface{} {
	staff, _ := p["staff"].(map[string]interface{})
	return staff
}

// StaffID returns staff._id
func (p Profile) StaffID() (string, error) {
	staff := p.Staff()
	if staff == nil {
		return "", fmt.Errorf("%w: staff is %T", ErrMissingStaffID, p["staff"])
	}
	switch id := staff["_id"].(type) {
	case string:
		if id == "" {
			return "", ErrMissingStaffID
		}
		return id, nil
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: _id is %T", ErrMissingStaffID, staff["_id"])
	}
}

// String returns the string value at key, or "" if absent or not a string
func (p Profile) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// merge returns a shallow copy of p with staff stored under "staff".
func (p Profile) merge(staff map[string]interface{}) Profile {
	merged := make(Profile, len(p)+1)
	for k, v := range p {
		merged[k] = v
	}
	merged["staff"] = staff
	return merged
}
