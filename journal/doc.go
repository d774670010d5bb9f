// SPDX-License-Identifier: Apache-2.0

// Package journal provides audit logging for paperback's backup lifecycle.
//
// This package records security-relevant events as structured JSON entries:
// a document built, a shard issued or encrypted, a quorum validated, a
// document recovered. Each audit entry captures the component, the trail
// (a MainDocument's ID), the action, the affected resource, and the outcome.
//
// Key types:
//
//   - AuditEntry: a single audit event with fields for component, trail ID,
//     action, resource, state, and duration.
//   - AuditAction: the backup lifecycle event recorded (document-built,
//     shard-issued, shard-encrypted, shard-pushed, quorum-validated,
//     document-recovered, shard-minted).
//   - AuditState: the outcome (audit-entry-created, audit-success,
//     audit-errored).
//
// Output format:
//
// Audit entries are written as JSON objects with a timestamp and nested
// audit data, keyed by the AuditEntry field names:
//
//	{"time":"2024-01-15T10:30:00Z","audit":{"Component":"...","TrailID":"...","Action":"...",...}}
package journal
