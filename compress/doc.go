// Package compress provides the compression codecs used by textual PNG
// chunks.
//
// The PNG format defines a single compression method for zTXt payloads:
// method 0, a deflate stream with the zlib wrapper. The Codec interface and
// the method-keyed factory keep the call sites independent of the concrete
// algorithm, and the no-op codec serves tests and already-raw payloads.
package compress
