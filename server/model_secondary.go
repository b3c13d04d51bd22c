package server

import (
	"fmt"
)

const HTTP_SUCCESS = 200
const HTTP_BAD_REQUEST = 400
const HTTP_NOT_FOUND = 404
const HTTP_TIMEOUT = 408
const HTTP_SERVER_ERR = 503

func (ss SessionState) Name() string {
	switch ss {
	case SES_NEW:
		return "NEW"
	case SES_PLAY:
		return "PLAY"
	case SES_OVER:
		return "OVER"
	case SES_ERR:
		return "ERR"
	default:
		return fmt.Sprintf("n/a:%d", ss)
	}
}
