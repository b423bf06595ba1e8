// SPDX-License-Identifier: MIT
// Package eval: functional policy options for plan construction.
// Defaults: scalar means, cost-selected organization, DefaultCosts.
package eval

// Option adjusts the evaluation policy resolved by NewPlan and the
// Evaluate entry points.
type Option func(*options)

// options is the effective policy after applying Option setters. Fields
// are unexported; entry points accept ...Option and resolve them through
// gatherOptions.
type options struct {
	org    Organization
	orgSet bool // false ⇒ organization chosen by cost comparison
	means  Means
	costs  Costs
}

// WithOrganization fixes the traversal organization instead of letting
// the cost model choose. Combinations the organization cannot serve fail
// plan construction.
func WithOrganization(org Organization) Option {
	return func(o *options) {
		o.org = org
		o.orgSet = true
	}
}

// WithMeans fixes the execution means. Only Scalar is implemented;
// requesting Vectorized fails plan construction with ErrMeansUnsupported.
func WithMeans(m Means) Option {
	return func(o *options) { o.means = m }
}

// WithCosts substitutes the cost constants used for organization
// selection and cost reporting.
func WithCosts(c Costs) Option {
	return func(o *options) { o.costs = c }
}

// gatherOptions applies user setters on top of the defaults;
// last-writer-wins. Complexity: O(len(user)).
func gatherOptions(user ...Option) options {
	o := options{
		means: Scalar,
		costs: DefaultCosts(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
