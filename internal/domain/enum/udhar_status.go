package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// UdharStatus represents the repayment state of a shop credit ledger
type UdharStatus int

const (
	UdharStatusUnpaid  UdharStatus = 0
	UdharStatusPartial UdharStatus = 1
	UdharStatusPaid    UdharStatus = 2
	UdharStatusOverdue UdharStatus = 3
)

func (s UdharStatus) String() string {
	names := [...]string{"UNPAID", "PARTIAL", "PAID", "OVERDUE"}
	if int(s) < 0 || int(s) >= len(names) {
		return "UNPAID"
	}
	return names[s]
}

func (s UdharStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *UdharStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = UdharStatus(i)
		return nil
	}
	switch str {
	case "UNPAID":
		*s = UdharStatusUnpaid
	case "PARTIAL":
		*s = UdharStatusPartial
	case "PAID":
		*s = UdharStatusPaid
	case "OVERDUE":
		*s = UdharStatusOverdue
	}
	return nil
}

func (s UdharStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *UdharStatus) Scan(value interface{}) error {
	if value == nil {
		*s = UdharStatusUnpaid
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = UdharStatus(v)
	case int:
		*s = UdharStatus(v)
	}
	return nil
}
