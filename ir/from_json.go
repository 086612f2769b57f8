package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// FromJSON ingests a JSON document, preserving object key order. Numbers
// decode through json.Number so integral values canonicalize to integer
// text.
func FromJSON(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return Null(), nil
		}
		return nil, err
	}
	node, err := fromJSONToken(dec, tok)
	if err != nil {
		return nil, err
	}
	return node, nil
}

func fromJSONToken(dec *json.Decoder, tok json.Token) (*Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			var kvs []KeyVal
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key %v", keyTok)
				}
				valTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				val, err := fromJSONToken(dec, valTok)
				if err != nil {
					return nil, err
				}
				kvs = append(kvs, KeyVal{Key: key, Val: val})
			}
			if _, err := dec.Token(); err != nil { // closing '}'
				return nil, err
			}
			return FromKeyVals(kvs), nil
		case '[':
			var vs []*Node
			for dec.More() {
				eltTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				elt, err := fromJSONToken(dec, eltTok)
				if err != nil {
					return nil, err
				}
				vs = append(vs, elt)
			}
			if _, err := dec.Token(); err != nil { // closing ']'
				return nil, err
			}
			return FromSlice(vs), nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	default:
		return FromAny(tok), nil
	}
}
