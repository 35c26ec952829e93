// Package config defines the account configuration model consumed by the
// ticket purchase scheduler, together with the comma separated grade list
// parser and a helper that loads the model from ./config/config.yaml.
//
// A configuration lists accounts. Each account carries exactly one ticket
// target, optional timing and retry controls, an optional monitor that
// polls sessions for acceptable grades, and optional notification settings.
// Absent optional values are nil; resolving them against defaults is left to
// the caller (see [Account.ResolveTiming]).
package config
