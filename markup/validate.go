package markup

// Result is the outcome of validating one input.
type Result struct {
	Tags   []Token           `json:"tags"`
	Errors []ValidationError `json:"errors"`
}

// Err returns the findings as a ValidationList, or nil when there are none.
func (r Result) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return ValidationList(r.Errors)
}

// Validate scans input and checks that its tags balance. The returned error
// is non-nil only when the scanner itself fails; findings about the input
// are in Result.Errors.
func Validate(input string, opts ...Option) (Result, error) {
	s := NewScanner(input, opts...)
	if err := s.Scan(); err != nil {
		return Result{}, err
	}

	tags := s.Tags()
	errs := s.Errors()
	errs = append(errs, checkAdjacency(tags)...)
	errs = append(errs, checkBalance(tags)...)
	sortErrors(errs)

	return Result{Tags: tags, Errors: errs}, nil
}

// checkAdjacency flags a close tag that directly follows an open tag with a
// different name. A close tag at index 0 is always flagged.
func checkAdjacency(tags []Token) []ValidationError {
	var errs []ValidationError
	for i, tag := range tags {
		if tag.Kind != Close {
			continue
		}
		if i == 0 {
			errs = append(errs, newError(UnexpectedClosingTag, tag.Name, tag.Cursor()))
			continue
		}
		if prev := tags[i-1]; prev.Kind == Open && prev.Name != tag.Name {
			errs = append(errs, newError(UnexpectedClosingTag, tag.Name, tag.Cursor()))
		}
	}
	return errs
}

// checkBalance matches opens and closes per tag name. Self-closing tags are
// ignored.
func checkBalance(tags []Token) []ValidationError {
	var order []string
	stacks := make(map[string][]Token)
	var errs []ValidationError

	for _, tag := range tags {
		if _, seen := stacks[tag.Name]; !seen {
			order = append(order, tag.Name)
			stacks[tag.Name] = nil
		}
		switch tag.Kind {
		case Open:
			stacks[tag.Name] = append(stacks[tag.Name], tag)
		case Close:
			stack := stacks[tag.Name]
			if len(stack) == 0 {
				errs = append(errs, newError(UnexpectedClosingTag, tag.Name, tag.Cursor()))
				continue
			}
			stacks[tag.Name] = stack[:len(stack)-1]
		}
	}

	for _, name := range order {
		for _, open := range stacks[name] {
			errs = append(errs, newError(UnclosedTag, open.Name, open.Cursor()))
		}
	}
	return errs
}
