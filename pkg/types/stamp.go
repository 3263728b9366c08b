// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// Stamp is an arXiv identifier as printed in the margin of arXiv PDFs and
// copied into citations: "arXiv:0706.0001v1 [q-bio.CB] 1 Jun 2007".
type Stamp struct {
	// ID is the identifier the stamp starts with.
	ID ArxivID `json:"id" yaml:"id"`

	// Category is the bracketed subject category, e.g. "q-bio.CB".
	Category string `json:"category" yaml:"category"`

	// Submitted is the submission date that ends the stamp.
	Submitted Date `json:"submitted" yaml:"submitted"`
}

// String returns the canonical stamp text with a three-letter month.
// Parsing it yields an identical record.
func (s Stamp) String() string {
	return fmt.Sprintf("%s [%s] %d %s %d",
		s.ID, s.Category, s.Submitted.Day, s.Submitted.Month.String()[:3], s.Submitted.Year)
}
