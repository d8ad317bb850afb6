// Package admin talks to a running Yggdrasil node's admin socket.
//
// The admin protocol is a sequence of JSON objects over a unix or TCP
// socket: each request names a method ("getpeers", "addpeer",
// "removepeer") with an arguments object, and the node answers with a
// status plus a method-specific response object. This client keeps one
// connection open (keepalive) for the duration of an update.
//
// The socket address comes from the node's own configuration file, whose
// AdminListen key is read here with an HJSON parser. That full-document
// parse is acceptable on this path because nothing is written back; the
// in-place patcher never goes near it.
package admin
