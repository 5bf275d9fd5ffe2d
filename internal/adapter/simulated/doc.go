// Package simulated provides canned implementations of the generation
// ports. They stand in for the summarisation, flashcard, study-plan and
// tutoring backends and return fixed payloads; only cosmetic details such
// as the file name or the selected language are taken from the input.
package simulated
