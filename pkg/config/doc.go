// Package config loads declarative combo box definitions from JSON or YAML
// documents and converts them into state and aria options.
//
// A document holds a map of controls keyed by id:
//
//	controls:
//	  pet:
//	    label: Favorite animal
//	    filter: startsWith
//	    policy:
//	      open: input
//	      revertOnClose: true
//	    options:
//	      - text: Cat
//	      - text: Dog
package config
