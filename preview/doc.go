// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package preview holds the uploaded invoice PDF and the pagination state of
// the preview pane. Only uploads declared as application/pdf are accepted.
// Page counting goes through a Viewer; a load failure is kept as the state's
// Error until Retry renders the same payload again.
package preview
