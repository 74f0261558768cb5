// Package charlm trains character-level LSTM language models
// and samples text from them.
package charlm
