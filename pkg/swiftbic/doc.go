// Package swiftbic checks Bank Identifier Codes (ISO 9362, also known as SWIFT
// codes).
//
// A BIC is 8 or 11 characters: a 4 letter institution code, a 2 letter
// ISO 3166-1 country code, a 2 character location code and an optional 3
// character branch code. Letters may be upper or lower case. Only the
// structure is checked; whether the institution exists is not.
//
// The rules come from go-playground/validator (bic, iso3166_1_alpha2), with
// XK accepted as a country.
package swiftbic
