// Package retry provides exponential backoff retry logic for transient failures.
//
// The [Do] function retries an operation with configurable max attempts and
// initial delay. It backs self-address discovery and other operations that
// may fail transiently; provisioning actions are never retried here.
package retry
