// Package cli implements the gophnotes command-line client on top of cobra.
//
// Commands
//
//	register | login | logout | me [--with-notes]
//	notes list | all | get <id> | create | update <id> | delete <id>
//	users list | get <id> | create | update <id> | delete <id>
//
// Global flags select the server (--addr), the session store
// (--session-file), the per-request timeout (--timeout), JSON output
// (--json) and debug logging (-v). After register or login the issued
// token is saved in the session store for the chosen server and sent with
// every later command.
package cli
