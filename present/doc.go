// Package present renders the two artifacts the ranking pipeline produces:
// ranked (label, score) pairs and square matrices with labels.
//
// The core never controls rendering — it only hands artifacts to a
// Presenter. This package defines that seam and ships Text, an
// always-available terminal renderer:
//
//   - ranked view: "rank - label (score)" lines at a configurable precision,
//     each with a proportional bar, styled with lipgloss;
//   - matrix view: a heat-map of shade cells scaled to the matrix min/max,
//     with row labels when provided.
//
// A graphical presenter is a drop-in replacement: implement the two Render
// methods and inject it where Text would go.
package present
