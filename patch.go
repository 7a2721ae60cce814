package jsonedit

import (
	jsonpatch "github.com/evanphx/json-patch/v5"
)

// ApplyPatch applies an RFC 6902 patch to the document text and returns the
// full document re-serialized in canonical form. It fails with *ParseError
// when doc is not valid JSON (before any patch operation runs) and with
// *UpdateError when the patch itself cannot be applied.
func ApplyPatch(doc []byte, patch jsonpatch.Patch) ([]byte, error) {
	if _, err := ParseValue(doc); err != nil {
		return nil, err
	}
	out, err := patch.Apply(doc)
	if err != nil {
		return nil, &UpdateError{Op: "apply patch", Err: err}
	}
	res, err := ParseValue(out)
	if err != nil {
		return nil, &UpdateError{Op: "reparse patched document", Err: err}
	}
	return res.Encode(), nil
}

// ApplyPatchAtPath applies an RFC 6902 patch to the sub-document at path and
// writes the result back into the full document. The path must resolve; no
// auto-vivification happens for a patch target.
func ApplyPatchAtPath(doc []byte, patch jsonpatch.Patch, path Path) ([]byte, error) {
	sub, err := Get(doc, path)
	if err != nil {
		return nil, err
	}
	out, err := patch.Apply(sub.Encode())
	if err != nil {
		return nil, &UpdateError{Op: "apply patch at " + Format(path), Err: err}
	}
	val, err := ParseValue(out)
	if err != nil {
		return nil, &UpdateError{Op: "reparse patched value at " + Format(path), Err: err}
	}
	return Update(doc, path, val)
}
