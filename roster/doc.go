// Package roster assembles the council: a chairman plus an ordered list of
// members, each bound to a model backend. A roster is built once at startup
// from the default lineup or a YAML file and shared read-only afterwards.
//
// Example roster file:
//
//	chairman:
//	  name: Chairman (Gemini)
//	  provider: gemini
//	  model: gemini-2.0-flash
//	members:
//	  - name: Council Member 1 (Mistral)
//	    provider: mistral
//	    model: mistral-small-latest
//	  - name: Council Member 2 (Claude)
//	    provider: anthropic
//	    timeout: 30s
package roster
