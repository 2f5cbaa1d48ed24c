package backend

import (
	"errors"
	"fmt"

	"github.com/2beens/wellnessbuddy/pkg"
)

// max number of response body chars shown in an API error notice
const maxNoticeBodyLen = 300

type NoticeKind string

const (
	KindConnectionError NoticeKind = "connection_error"
	KindAPIError        NoticeKind = "api_error"
	KindSuccess         NoticeKind = "success"
	KindInfo            NoticeKind = "info"
)

func (k NoticeKind) String() string {
	return string(k)
}

func (k NoticeKind) IsError() bool {
	return k == KindConnectionError || k == KindAPIError
}

// Notice is a user visible message, shown inline on the page.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

func SuccessNotice(message string) Notice {
	return Notice{Kind: KindSuccess, Message: message}
}

func InfoNotice(message string) Notice {
	return Notice{Kind: KindInfo, Message: message}
}

// NoticeFromError turns a request error into the notice shown to the user.
func NoticeFromError(err error) Notice {
	var connErr *ConnectionError
	if errors.As(err, &connErr) {
		return Notice{
			Kind:    KindConnectionError,
			Message: fmt.Sprintf("Connection error: %s", connErr.Err),
		}
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return Notice{
			Kind:    KindAPIError,
			Message: fmt.Sprintf("API Error: %d - %s", apiErr.StatusCode, pkg.Truncate(apiErr.Body, maxNoticeBodyLen)),
		}
	}

	return Notice{
		Kind:    KindAPIError,
		Message: fmt.Sprintf("Request error: %s", err),
	}
}

type Notifier interface {
	Notify(notice Notice)
}

// Notices collects the notices of a single interaction (one page load or
// one form submission). Not safe for concurrent use.
type Notices struct {
	list []Notice
}

func NewNotices(initial ...Notice) *Notices {
	return &Notices{
		list: append([]Notice(nil), initial...),
	}
}

func (n *Notices) Notify(notice Notice) {
	n.list = append(n.list, notice)
}

func (n *Notices) All() []Notice {
	return append([]Notice(nil), n.list...)
}

func (n *Notices) Len() int {
	return len(n.list)
}

func (n *Notices) HasErrors() bool {
	for _, notice := range n.list {
		if notice.Kind.IsError() {
			return true
		}
	}
	return false
}

// discardNotifier is used when the caller passes no notifier
type discardNotifier struct{}

func (discardNotifier) Notify(Notice) {}
