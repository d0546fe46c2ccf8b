// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the gateway's background jobs next to the HTTP
// server. Every worker receives the server's lifetime context and returns
// once it is cancelled.
package workers

import "context"

// Worker is a background job.
//
// Run blocks until ctx is cancelled or the job fails. Returning a non-nil
// error cancels the other workers started by the same [Workers.Run].
type Worker interface {
	Run(ctx context.Context) error
}
