// Package contact turns the raw text recognized from a business card into a
// structured Record. The parser is a single forward pass of independent,
// first-match-wins detectors over the card's lines and never fails: input it
// cannot make sense of simply yields empty fields. Nothing is inferred beyond
// direct pattern or lexicon matches, so every value in a Record can be traced
// back to one line or one token of the input.
package contact
