// Package wire defines the JSON wire protocol: inbound requests, outbound
// step/terminal records, and the Error taxonomy, all with camelCase,
// `type`-tagged discriminated unions.
//
// encoding/json is used directly rather than a replacement encoder: no repo
// in the example pack swaps it out for this kind of tagged-union request/
// response shape (gin and the websocket hub both marshal plain structs with
// encoding/json under the hood), so there is no ecosystem precedent to
// follow here instead of the standard library.
package wire
