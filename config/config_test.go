package config_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/ticketconf/config"
	"github.com/viant/ticketconf/internal/conv"
	"github.com/viant/ticketconf/loader"
)

const minimalYAML = `
accounts:
  - cookie: "sid=abc"
    remark: primary
    ticket:
      id: "T100"
      num: 2
      sessions: 1
      grade: 3
`

const fullYAML = `
accounts:
  - cookie: "sid=abc"
    remark: primary
    ticket:
      id: "T100"
      num: 2
      sessions: 1
      grade: 3
    interval: 1000
    earliest_submit_time: -5
    request_time: 1700000000000
    retry_times: 3
    retry_interval: 200
    monitor:
      enable: true
      interval: 5000
      sessions:
        - index: 0
          grades: "1, 2 ,3"
        - index: 2
          grades: "4"
    dingtalk_notify: true
    dingtalk_token: "tok"
`

func load(t *testing.T, name, content string) (*config.Config, error) {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return loader.Load[config.Config](context.Background(), p, loader.WithLogger(zerolog.Nop()))
}

func TestLoad_Minimal(t *testing.T) {
	cfg, err := load(t, "config.yaml", minimalYAML)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.Len(t, cfg.Accounts, 1)

	account := cfg.Accounts[0]
	assert.Equal(t, "sid=abc", account.Cookie)
	assert.Equal(t, "primary", account.Remark)
	assert.Equal(t, config.Ticket{ID: "T100", Num: 2, Sessions: 1, Grade: 3}, account.Ticket)
	assert.Equal(t, config.Timing{}, account.Timing)
	assert.Nil(t, account.Monitor)
	assert.Nil(t, account.DingtalkNotify)
	assert.Nil(t, account.DingtalkToken)
	assert.False(t, account.NotifyEnabled())
	assert.False(t, account.Monitor.Active())
}

func TestLoad_Full(t *testing.T) {
	cfg, err := load(t, "config.yaml", fullYAML)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.Len(t, cfg.Accounts, 1)

	expected := config.Account{
		Cookie: "sid=abc",
		Remark: "primary",
		Ticket: config.Ticket{ID: "T100", Num: 2, Sessions: 1, Grade: 3},
		Timing: config.Timing{
			Interval:           conv.Pointer(uint64(1000)),
			EarliestSubmitTime: conv.Pointer(int64(-5)),
			RequestTime:        conv.Pointer(int64(1700000000000)),
			RetryTimes:         conv.Pointer(uint8(3)),
			RetryInterval:      conv.Pointer(uint64(200)),
		},
		Monitor: &config.Monitor{
			Enable:   true,
			Interval: 5000,
			Sessions: []config.Sessions{
				{Index: 0, Grades: config.Grades{1, 2, 3}},
				{Index: 2, Grades: config.Grades{4}},
			},
		},
		DingtalkNotify: conv.Pointer(true),
		DingtalkToken:  conv.Pointer("tok"),
	}
	assert.Equal(t, expected, cfg.Accounts[0])
	assert.True(t, cfg.Accounts[0].NotifyEnabled())
	assert.True(t, cfg.Accounts[0].Monitor.Active())
}

func TestLoad_PreservesAccountOrder(t *testing.T) {
	content := `
accounts:
  - cookie: same
    remark: second-in-name-first-in-file
    ticket: {id: b, num: 1, sessions: 1, grade: 1}
  - cookie: same
    remark: first
    ticket: {id: a, num: 1, sessions: 1, grade: 1}
`
	cfg, err := load(t, "config.yaml", content)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.Len(t, cfg.Accounts, 2)
	assert.Equal(t, "b", cfg.Accounts[0].Ticket.ID)
	assert.Equal(t, "a", cfg.Accounts[1].Ticket.ID)
	assert.Equal(t, cfg.Accounts[0].Cookie, cfg.Accounts[1].Cookie)
}

func TestLoad_OtherFormats(t *testing.T) {
	expected, err := load(t, "config.yaml", fullYAML)
	require.NoError(t, err)

	testCases := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "json",
			file: "config.json",
			content: `{"accounts":[{"cookie":"sid=abc","remark":"primary",
				"ticket":{"id":"T100","num":2,"sessions":1,"grade":3},
				"interval":1000,"earliest_submit_time":-5,"request_time":1700000000000,
				"retry_times":3,"retry_interval":200,
				"monitor":{"enable":true,"interval":5000,"sessions":[{"index":0,"grades":"1, 2 ,3"},{"index":2,"grades":"4"}]},
				"dingtalk_notify":true,"dingtalk_token":"tok"}]}`,
		},
		{
			name: "toml",
			file: "config.toml",
			content: `
[[accounts]]
cookie = "sid=abc"
remark = "primary"
interval = 1000
earliest_submit_time = -5
request_time = 1700000000000
retry_times = 3
retry_interval = 200
dingtalk_notify = true
dingtalk_token = "tok"

[accounts.ticket]
id = "T100"
num = 2
sessions = 1
grade = 3

[accounts.monitor]
enable = true
interval = 5000

[[accounts.monitor.sessions]]
index = 0
grades = "1, 2 ,3"

[[accounts.monitor.sessions]]
index = 2
grades = "4"
`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := load(t, tc.file, tc.content)
			require.NoError(t, err)
			assert.Equal(t, expected, actual)
		})
	}
}

func TestLoad_SchemaFailures(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		missing *config.MissingFieldError
		format  bool
	}{
		{
			name:    "no accounts",
			content: "other: 1\n",
			missing: &config.MissingFieldError{Entity: "config", Field: "accounts"},
		},
		{
			name:    "ticket without id",
			content: "accounts:\n  - {cookie: c, remark: r, ticket: {num: 1, sessions: 1, grade: 1}}\n",
			missing: &config.MissingFieldError{Entity: "ticket", Field: "id"},
		},
		{
			name:    "null cookie",
			content: "accounts:\n  - {cookie: ~, remark: r, ticket: {id: t, num: 1, sessions: 1, grade: 1}}\n",
			missing: &config.MissingFieldError{Entity: "account", Field: "cookie"},
		},
		{
			name:    "account without ticket",
			content: "accounts:\n  - {cookie: c, remark: r}\n",
			missing: &config.MissingFieldError{Entity: "account", Field: "ticket"},
		},
		{
			name:    "monitor without sessions",
			content: "accounts:\n  - {cookie: c, remark: r, ticket: {id: t, num: 1, sessions: 1, grade: 1}, monitor: {enable: true, interval: 1}}\n",
			missing: &config.MissingFieldError{Entity: "monitor", Field: "sessions"},
		},
		{
			name:    "session without grades",
			content: "accounts:\n  - {cookie: c, remark: r, ticket: {id: t, num: 1, sessions: 1, grade: 1}, monitor: {enable: true, interval: 1, sessions: [{index: 1}]}}\n",
			missing: &config.MissingFieldError{Entity: "sessions", Field: "grades"},
		},
		{
			name:    "malformed grades",
			content: "accounts:\n  - {cookie: c, remark: r, ticket: {id: t, num: 1, sessions: 1, grade: 1}, monitor: {enable: true, interval: 1, sessions: [{index: 1, grades: '1,,3'}]}}\n",
			format:  true,
		},
		{name: "negative num", content: "accounts:\n  - {cookie: c, remark: r, ticket: {id: t, num: -1, sessions: 1, grade: 1}}\n"},
		{name: "retry times overflow", content: "accounts:\n  - {cookie: c, remark: r, retry_times: 256, ticket: {id: t, num: 1, sessions: 1, grade: 1}}\n"},
		{name: "string interval", content: "accounts:\n  - {cookie: c, remark: r, interval: soon, ticket: {id: t, num: 1, sessions: 1, grade: 1}}\n"},
		{name: "accounts not a list", content: "accounts: {cookie: c}\n"},
		{name: "integral float num", content: "accounts:\n  - {cookie: c, remark: r, ticket: {id: t, num: 2.0, sessions: 1, grade: 1}}\n"},
		{name: "float monitor interval", content: "accounts:\n  - {cookie: c, remark: r, ticket: {id: t, num: 1, sessions: 1, grade: 1}, monitor: {enable: true, interval: 5.0, sessions: []}}\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := load(t, "config.yaml", tc.content)
			assert.Nil(t, cfg)

			var decodeErr *loader.SchemaDecodeError
			require.True(t, errors.As(err, &decodeErr), "expected SchemaDecodeError, got %v", err)
			assert.NotEmpty(t, decodeErr.Canonical)
			assert.True(t, json.Valid([]byte(decodeErr.Canonical)))

			if tc.missing != nil {
				var missingErr *config.MissingFieldError
				require.True(t, errors.As(err, &missingErr), "expected MissingFieldError, got %v", err)
				assert.Equal(t, tc.missing, missingErr)
			}
			if tc.format {
				var formatErr *config.FieldFormatError
				assert.True(t, errors.As(err, &formatErr), "expected FieldFormatError, got %v", err)
			}
		})
	}
}

func TestLoad_InvalidSyntaxYieldsAbsence(t *testing.T) {
	cfg, err := load(t, "config.yaml", "accounts:\n  - {cookie: c, remark: r\n")
	assert.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_CanonicalKeepsCookieText(t *testing.T) {
	cfg, err := load(t, "config.yaml", "accounts:\n  - {cookie: 'sid=a&b<c>', remark: r, ticket: {num: 1, sessions: 1, grade: 1}}\n")
	assert.Nil(t, cfg)

	var decodeErr *loader.SchemaDecodeError
	require.True(t, errors.As(err, &decodeErr), "expected SchemaDecodeError, got %v", err)
	assert.Contains(t, decodeErr.Canonical, `"cookie": "sid=a&b<c>"`)
}

func TestLoad_UnknownFieldsIgnored(t *testing.T) {
	cfg, err := load(t, "config.yaml", minimalYAML+"version: 2\n")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Len(t, cfg.Accounts, 1)
}
