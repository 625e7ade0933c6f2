// Package statgen generates ability scores and runs the assignment session
// for the best-three-of-four method.
//
// Three methods are supported:
//
//   - Priority: deterministic. The most important attribute gets 17, the
//     least important 9, the other four 12.
//   - Hardcore: 3d6 per attribute in order. A set where nothing exceeds 12 is
//     thrown away and rolled again.
//   - Best three of four: six candidates of 4d6 with the lowest die dropped,
//     assigned by the player through a Session.
//
// A Session hands the pool values to attributes in the fixed order Strength,
// Dexterity, Constitution, Intelligence, Wisdom, Charisma. Players choose
// which value goes next, never which attribute it lands on. Every rejected
// operation leaves the session exactly as it was.
package statgen
