// Package sanitizer normalizes visitor input before it is validated and sent
// to the hotel API.
//
// All functions are idempotent and never fail: input that cannot be
// normalized comes back empty, and the validators downstream reject it.
//
// Normalization includes:
//   - Free text (location, hotel name, customer name): trim and collapse whitespace
//   - Phone numbers: E.164, national numbers read as Mongolian
//   - Emails: trim and lowercase
//   - Slices: drop duplicates and empty values after normalization
package sanitizer
