package parser

import (
	"fmt"
	"net/http"

	"github.com/vmihailenco/msgpack/v5"
)

// MsgPack decodes MessagePack payloads using github.com/vmihailenco/msgpack/v5.
type MsgPack struct {
	QueryDict
}

func (MsgPack) ParseBody(_ *http.Request, body []byte) (map[string]any, error) {
	var data map[string]any
	if err := msgpack.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMsgPack, err)
	}
	return data, nil
}
