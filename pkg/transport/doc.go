// Package transport moves documents between shadercopy and the outside world
// as text.
//
// [CopyToText] and [PasteFromText] are the text codec: JSON by default, YAML
// on request, and lenient on input (JSON first, YAML as a fallback).
//
// A [Clipboard] is where the text goes. [System] uses the operating system's
// clipboard and reports CLIPBOARD_UNAVAILABLE when no clipboard utility is
// installed; [File] and [Memory] serve headless sessions and tests. [Copy]
// and [Paste] combine the codec with a clipboard and emit clipboard hooks.
//
// [History] remembers every copied document in a [cache.Cache], keyed by the
// SHA-256 of its text, so an earlier copy can be pasted again.
package transport
