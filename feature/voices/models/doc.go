// Package models defines the persistence entities of the voice sync ledger:
// remote account credentials and per-(credential, voice) sync records.
package models
