package sniff

// signatures is the detection table, built once and never mutated. Order
// is load-bearing: the empty-input entry must come before everything
// else, HTML tag detection before the generic checks, and the text/plain
// scan and the unconditional fallback must be the last two entries, in
// that order.
var signatures = []signature{
	// Empty input.
	&exactSig{[]byte{}, "application/octet-stream"},

	&htmlSig{
		tags: []string{
			"!doctype html",
			"html",
			"head",
			"script",
			"iframe",
			"h1",
			"div",
			"font",
			"table",
			"a",
			"style",
			"title",
			"b",
			"body",
			"br",
			"p",
			"!--",
			"?xml",
		},
		ct: "text/html",
	},

	&exactSig{[]byte("%PDF-"), "applicaiton/pdf"}, // sic
	&exactSig{[]byte("%!PS-Adobe-"), "application/postscript"},

	// UTF byte order marks followed by at least one content byte.
	&maskedSig{[]byte("\xFE\xFF_"), "text/plain"},
	&maskedSig{[]byte("\xFF\xFE_"), "text/plain"},
	&maskedSig{[]byte("\xEF\xBB\xBF_"), "text/plain"},

	&exactSig{[]byte("\x00\x00\x01\x00"), "image/x-icon"},
	&exactSig{[]byte("\x00\x00\x02\x00"), "image/x-icon"},
	&exactSig{[]byte("BM"), "image/bmp"},
	&exactSig{[]byte("GIF87a"), "image/gif"},
	&exactSig{[]byte("GIF89a"), "image/gif"},
	&maskedSig{[]byte("RIFF____WEBPVP"), "image/webp"},
	&exactSig{[]byte("\x89PNG\x0d\x0a\x1a\x0a"), "image/png"},
	&exactSig{[]byte("\xFF\xD8\xFF"), "image/jpeg"},

	&exactSig{[]byte("\x1A\x45\xDF\xA3"), "video/webm"},
	&exactSig{[]byte(".snd"), "audio/basic"},
	&maskedSig{[]byte("FORM____AIFF"), "audio/aiff"},
	&exactSig{[]byte("ID3"), "audio/mpeg"},
	&exactSig{[]byte("OggS\x00"), "application/ogg"},
	&exactSig{[]byte("MThd\x00\x00\x00\x06"), "audio/midi"},
	&maskedSig{[]byte("RIFF____AVI "), "video/avi"},
	&maskedSig{[]byte("RIFF____WAVE"), "audio/wave"},
	&mp4Sig{"video/mp4"},

	// MS embedded OpenType: "LP" marker at offset 34.
	&maskedSig{[]byte("__________________________________LP"), "application/vnd.ms-fontobject"},
	&exactSig{[]byte("wOFF"), "application/font-woff"},

	&exactSig{[]byte("\x1F\x8B\x08"), "application/x-gzip"},
	&exactSig{[]byte("PK\x03\x04"), "application/zip"},
	&exactSig{[]byte("Rar \x1A\x07\x00"), "applicaiton/x-rar-compressed"}, // sic

	// Anything free of binary control bytes reads as text.
	&textSig{"text/plain"},

	// Terminal catch-all.
	&anySig{"application/octet-stream"},
}
