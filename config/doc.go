// Package config loads the engine configuration once, before any request.
//
// Sources, later ones winning:
//
//  1. Default().
//  2. A YAML file (a missing file keeps the defaults).
//  3. .env files read with godotenv, in the order given.
//  4. The process environment.
//
// Environment keys: LVGUIDE_MARKUP_ENABLED, LVGUIDE_PHONEME_FORMAT,
// LVGUIDE_QUOTE, LVGUIDE_LANGUAGE, LVGUIDE_UNITS, LVGUIDE_DICTIONARY_PATH and
// LVGUIDE_DRIVE_ON_RIGHT.
//
// Load validates the result, so a bad phoneme format fails startup rather
// than a request. The returned Config is a plain value; pass it on
// explicitly.
//
// Errors:
//
//   - ErrInvalid for any rejected value. Markup problems also match
//     markup.ErrConfiguration.
package config
