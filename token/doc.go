// Package token provides tokenization support for JSON text.
//
// [Tokenizer] produces tokens one at a time from a byte slice, and
// [Tokenize] collects them all. Lexical errors are *[TokenizeErr] values
// carrying the offending position; errors caused by the input ending in
// the middle of a token wrap [ErrTruncated].
//
// [Quote] and [AppendQuote] produce JSON string literals, the inverse of
// what the tokenizer accepts for [TString] tokens.
package token
