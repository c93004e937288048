// Package services implements the core business logic of the legal
// document assistant. Services implement the driving ports and depend
// only on domain types and driven ports. Every collaborator is
// injected through the constructor; nothing here reaches for globals.
package services
