package entities

import (
	"encoding/json"
	"fmt"
)

// UserStatus representa o estado da conta
type UserStatus struct {
	code        int
	key         string
	name        string
	description string
}

var (
	StatusActive   = UserStatus{code: 0, key: "ACTIVE", name: "启用", description: "账户正常使用"}
	StatusDisabled = UserStatus{code: 1, key: "DISABLED", name: "禁用", description: "账户被禁用"}
)

var userStatuses = []UserStatus{StatusActive, StatusDisabled}

// UserStatusFromCode converte o código persistido em UserStatus.
// Códigos desconhecidos resultam em StatusActive.
func UserStatusFromCode(code int) UserStatus {
	for _, s := range userStatuses {
		if s.code == code {
			return s
		}
	}
	return StatusActive
}

// ParseUserStatus converte o identificador textual (ACTIVE, DISABLED)
func ParseUserStatus(key string) (UserStatus, error) {
	for _, s := range userStatuses {
		if s.key == key {
			return s, nil
		}
	}
	return UserStatus{}, fmt.Errorf("unknown user status %q", key)
}

func (s UserStatus) Code() int           { return s.code }
func (s UserStatus) Name() string        { return s.name }
func (s UserStatus) Description() string { return s.description }
func (s UserStatus) String() string      { return s.key }

func (s UserStatus) IsZero() bool {
	return s.key == ""
}

func (s UserStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.key)
}

func (s *UserStatus) UnmarshalJSON(data []byte) error {
	var key string
	if err := json.Unmarshal(data, &key); err != nil {
		return err
	}
	status, err := ParseUserStatus(key)
	if err != nil {
		return err
	}
	*s = status
	return nil
}
