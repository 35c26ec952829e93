package config

import (
	"encoding/json"

	"github.com/viant/ticketconf/internal/conv"
)

// Ticket identifies the purchase target of an account.
type Ticket struct {
	ID       string `yaml:"id" json:"id"`
	Num      uint   `yaml:"num" json:"num"`
	Sessions uint   `yaml:"sessions" json:"sessions"`
	Grade    uint   `yaml:"grade" json:"grade"`
}

// Sessions is one monitored session slot with its acceptable grades.
type Sessions struct {
	Index  uint   `yaml:"index" json:"index"`
	Grades Grades `yaml:"grades" json:"grades"`
}

// Monitor configures polling of sessions for availability.
type Monitor struct {
	Enable   bool       `yaml:"enable" json:"enable"`
	Interval uint64     `yaml:"interval" json:"interval"`
	Sessions []Sessions `yaml:"sessions" json:"sessions"`
}

// Timing groups the optional timing and retry controls of an account.
// A nil field means the caller's default applies.
type Timing struct {
	Interval           *uint64 `yaml:"interval,omitempty" json:"interval,omitempty"`
	EarliestSubmitTime *int64  `yaml:"earliest_submit_time,omitempty" json:"earliest_submit_time,omitempty"`
	RequestTime        *int64  `yaml:"request_time,omitempty" json:"request_time,omitempty"`
	RetryTimes         *uint8  `yaml:"retry_times,omitempty" json:"retry_times,omitempty"`
	RetryInterval      *uint64 `yaml:"retry_interval,omitempty" json:"retry_interval,omitempty"`
}

// Account is one configured identity with its ticket target.
type Account struct {
	Cookie         string   `yaml:"cookie" json:"cookie"`
	Remark         string   `yaml:"remark" json:"remark"`
	Ticket         Ticket   `yaml:"ticket" json:"ticket"`
	Timing         `yaml:",inline" json:",inline"`
	Monitor        *Monitor `yaml:"monitor,omitempty" json:"monitor,omitempty"`
	DingtalkNotify *bool    `yaml:"dingtalk_notify,omitempty" json:"dingtalk_notify,omitempty"`
	DingtalkToken  *string  `yaml:"dingtalk_token,omitempty" json:"dingtalk_token,omitempty"`
}

// Config is the root of the configuration file.
type Config struct {
	Accounts []Account `yaml:"accounts" json:"accounts"`
}

func (c *Config) UnmarshalJSON(data []byte) error {
	if err := requireFields("config", data, "accounts"); err != nil {
		return err
	}
	type config Config
	return json.Unmarshal(data, (*config)(c))
}

func (a *Account) UnmarshalJSON(data []byte) error {
	if err := requireFields("account", data, "cookie", "remark", "ticket"); err != nil {
		return err
	}
	type account Account
	return json.Unmarshal(data, (*account)(a))
}

func (t *Ticket) UnmarshalJSON(data []byte) error {
	if err := requireFields("ticket", data, "id", "num", "sessions", "grade"); err != nil {
		return err
	}
	type ticket Ticket
	return json.Unmarshal(data, (*ticket)(t))
}

func (m *Monitor) UnmarshalJSON(data []byte) error {
	if err := requireFields("monitor", data, "enable", "interval", "sessions"); err != nil {
		return err
	}
	type monitor Monitor
	return json.Unmarshal(data, (*monitor)(m))
}

func (s *Sessions) UnmarshalJSON(data []byte) error {
	if err := requireFields("sessions", data, "index", "grades"); err != nil {
		return err
	}
	type sessions Sessions
	return json.Unmarshal(data, (*sessions)(s))
}

// NotifyEnabled reports whether DingTalk notification is switched on and a
// token is configured.
func (a *Account) NotifyEnabled() bool {
	return conv.Dereference(a.DingtalkNotify) && conv.Dereference(a.DingtalkToken) != ""
}

// Active reports whether the monitor is configured and enabled.
func (m *Monitor) Active() bool {
	return m != nil && m.Enable
}

// Session returns the first session with the given index.
func (m *Monitor) Session(index uint) (*Sessions, bool) {
	if m == nil {
		return nil, false
	}
	for i := range m.Sessions {
		if m.Sessions[i].Index == index {
			return &m.Sessions[i], true
		}
	}
	return nil, false
}

// Accepts reports whether grade is listed for the session.
func (s *Sessions) Accepts(grade uint) bool {
	for _, candidate := range s.Grades {
		if candidate == grade {
			return true
		}
	}
	return false
}
