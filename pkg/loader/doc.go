// Package loader reads schema documents (JSON or YAML) describing forms and
// builds them through the schema constructors, so every identifier and
// uniqueness rule applies to file-based schemas too.
//
// A document holds a list of forms:
//
//	forms:
//	  - id: purchase
//	    description: Details of a purchase
//	    elements:
//	      - kind: number
//	        id: price
//	        examples:
//	          - text: It costs $10
//	            value: $10
//	          - text: nothing to see
//	            value: ""
//	      - kind: selection
//	        id: method
//	        multiple: true
//	        options:
//	          - id: card
//	            examples: [paid by visa]
//	        nullExamples: [the weather is nice]
//	      - kind: object
//	        id: address
//	        examples:
//	          - text: 1 Main St, Boston
//	            values: {street: 1 Main St, city: Boston}
//
// Values accept a string or a list of strings.
package loader
