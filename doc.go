// Package smppd implements the Short Message Peer-to-Peer (SMPP) v5.0
// protocol: a wire codec and session state machine for exchanging PDUs
// between External Short Message Entities (ESMEs) and Message Centres (MCs).
//
// Definitions
//
// ESME: An External Short Message Entity is a client of the protocol —
// typically an application that submits or receives short messages.
//
// MC: A Message Centre is the server side of the protocol, commonly an SMSC.
//
// PDU: A Protocol Data Unit is a single framed SMPP message: a 16-byte
// header followed by a command-specific body.
//
// This package is synchronous and allocation-light; see the conn package
// for an asynchronous connection driver built on top of it.
package smppd
