package errorhandler

import (
	"context"
)

type ActionType int

const (
	ActionTypeDrop  ActionType = iota // Discard the payload and continue
	ActionTypeRetry                   // Retry delivery of this payload
	ActionTypeFail                    // Give up and surface the error
)

func (a ActionType) String() string {
	switch a {
	case ActionTypeDrop:
		return "Drop"
	case ActionTypeRetry:
		return "Retry"
	case ActionTypeFail:
		return "Fail"
	default:
		return "Unknown"
	}
}

var _ Action = ActionDrop{}
var _ Action = ActionRetry{}
var _ Action = ActionFail{}

type Action interface {
	Type() ActionType
}

type ActionDrop struct{}

func (a ActionDrop) Type() ActionType {
	return ActionTypeDrop
}

type ActionRetry struct{}

func (a ActionRetry) Type() ActionType {
	return ActionTypeRetry
}

type ActionFail struct{}

func (a ActionFail) Type() ActionType {
	return ActionTypeFail
}

type Handler interface {
	Handle(ctx context.Context, ec ErrorContext) Action
}

type HandlerFunc func(ctx context.Context, ec ErrorContext) Action

func (f HandlerFunc) Handle(ctx context.Context, ec ErrorContext) Action {
	return f(ctx, ec)
}
