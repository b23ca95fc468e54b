package types

import "encoding/json"

// ------------------------------
// Response Records
// ------------------------------

// CreationDate is the record returned by both estimation endpoints.
// CreationDate is month-granular, formatted "M.YYYY" (e.g. "1.2024").
type CreationDate struct {
	UserID          int64  `json:"user_id"`
	CreationDate    string `json:"creation_date"`
	AccuracyText    string `json:"accuracy_text"`
	AccuracyPercent int    `json:"accuracy_percent"`
}

// CreationDateByUsername mirrors CreationDate plus the username the server
// resolved before running the estimation.
type CreationDateByUsername struct {
	Username        string `json:"username"`
	UserID          int64  `json:"user_id"`
	CreationDate    string `json:"creation_date"`
	AccuracyText    string `json:"accuracy_text"`
	AccuracyPercent int    `json:"accuracy_percent"`
}

// UsernameInfo describes one of the usernames attached to an account.
type UsernameInfo struct {
	Username string `json:"username"`
	Editable bool   `json:"editable"`
	Active   bool   `json:"active"`
}

// UserPhoto describes the profile photo of a resolved account.
type UserPhoto struct {
	PhotoID       int64   `json:"photo_id"`
	DCID          int     `json:"dc_id"`
	HasVideo      bool    `json:"has_video"`
	Personal      bool    `json:"personal"`
	StrippedThumb *string `json:"stripped_thumb,omitempty"`
}

// Identity is the profile record returned by the resolveUsername endpoint.
// Optional fields are pointers; nil means the server omitted the field or
// sent null. Raw holds every top-level field of the response body so callers
// can reach attributes the server adds without a client release.
type Identity struct {
	ID         int64          `json:"id"`
	FirstName  *string        `json:"first_name"`
	LastName   *string        `json:"last_name"`
	Username   *string        `json:"username"`
	Phone      *string        `json:"phone"`
	Premium    bool           `json:"premium"`
	Verified   bool           `json:"verified"`
	Bot        bool           `json:"bot"`
	Deleted    bool           `json:"deleted"`
	Scam       bool           `json:"scam"`
	Fake       bool           `json:"fake"`
	AccessHash *int64         `json:"access_hash,omitempty"`
	Photo      *UserPhoto     `json:"photo,omitempty"`
	Usernames  []UsernameInfo `json:"usernames,omitempty"`

	Raw map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the typed fields and keeps the full object in Raw.
func (i *Identity) UnmarshalJSON(data []byte) error {
	type plain Identity
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*i = Identity(p)
	i.Raw = raw
	return nil
}
