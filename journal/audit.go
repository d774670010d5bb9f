// SPDX-License-Identifier: Apache-2.0

package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	logger "github.com/cyphervault/paperback/log"
)

type AuditState string

const AuditEntryCreated AuditState = "audit-entry-created"
const AuditErrored AuditState = "audit-errored"
const AuditSuccess AuditState = "audit-success"

// AuditAction enumerates the backup lifecycle events the journal package
// records: building a document, issuing or encrypting a shard, validating a
// quorum, and recovering the original secret.
type AuditAction string

const AuditDocumentBuilt AuditAction = "document-built"
const AuditShardIssued AuditAction = "shard-issued"
const AuditShardEncrypted AuditAction = "shard-encrypted"
const AuditShardPushed AuditAction = "shard-pushed"
const AuditQuorumValidated AuditAction = "quorum-validated"
const AuditDocumentRecovered AuditAction = "document-recovered"
const AuditShardMinted AuditAction = "shard-minted"

// AuditEntry represents a single audit log entry describing one step of a
// backup's lifecycle.
type AuditEntry struct {
	// Component is the name of the component that performed the action.
	Component string

	// TrailID is a unique identifier for the audit trail, typically a
	// MainDocument's ID.
	TrailID string

	// Timestamp indicates when the audited action occurred.
	Timestamp time.Time

	// Action describes what operation was performed.
	Action AuditAction

	// Resource identifies the object acted upon, such as a shard ID.
	Resource string

	// State represents the state of the resource after the action.
	State AuditState

	// Err contains an error message if the action failed.
	Err string

	// Duration is the time taken to process the action.
	Duration time.Duration
}

type AuditLogLine struct {
	Timestamp  time.Time  `json:"time"`
	AuditEntry AuditEntry `json:"audit"`
}

// Audit logs an audit entry as JSON to stderr, separating audit events from
// application output so a log aggregator can distinguish the two streams.
//
// Unlike the teacher's AuditRequest-based handler, a marshal failure here
// never terminates the process: this package is reachable from the backup
// and recovery packages, and a library has no business exiting its caller.
// The failure is logged at error level instead.
func Audit(entry AuditEntry) {
	audit := AuditLogLine{
		Timestamp:  time.Now(),
		AuditEntry: entry,
	}

	body, err := json.Marshal(audit)
	if err != nil {
		logger.Log().Error("Audit: failed to marshal entry", "err", err.Error())
		return
	}

	_, _ = fmt.Fprintln(os.Stderr, string(body))
}
