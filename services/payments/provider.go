package payments

// StripeContext carries the publishable-key configuration payment views need
// to initialize the processor's browser SDK. The gateway never holds a
// secret key; every privileged processor call is delegated to the backend.
type StripeContext struct {
	PublishableKey string
}

// NewStripeContext builds the provider context handed to payment templates.
func NewStripeContext(publishableKey string) StripeContext {
	return StripeContext{PublishableKey: publishableKey}
}

// Configured reports whether the browser SDK can be initialized at all.
func (s StripeContext) Configured() bool {
	return s.PublishableKey != ""
}
