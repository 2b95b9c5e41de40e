package file

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/aanand-mishra/people-registry/internal/types"
)

// XML stores the list as an XML document:
//
//	<?xml version="1.0" encoding="UTF-8"?>
//	<ArrayOfStudent>
//	  <Student>
//	    <FirstName>Ivan</FirstName>
//	    ...
//	  </Student>
//	</ArrayOfStudent>
type XML[T types.Record] struct{}

// NewXML returns an XML provider for T.
func NewXML[T types.Record]() *XML[T] {
	return &XML[T]{}
}

func rootName(tag string) string { return "ArrayOf" + tag }

// Load decodes the document stored at path. The root element must belong
// to T; record elements of any other name are ignored.
func (x *XML[T]) Load(path string) ([]T, error) {
	raw, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []T{}, nil
	}

	tag := tagOf[T]()
	dec := xml.NewDecoder(bytes.NewReader(raw))
	data := []T{}
	depth := 0
	sawRoot := false

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				if el.Name.Local != rootName(tag) {
					return nil, fmt.Errorf("xml: unexpected root element <%s>, want <%s>", el.Name.Local, rootName(tag))
				}
				sawRoot = true
				depth++
				continue
			}
			if el.Name.Local != tag {
				if err := dec.Skip(); err != nil {
					return nil, err
				}
				continue
			}

			var rec T
			if err := dec.DecodeElement(&rec, &el); err != nil {
				return nil, err
			}
			data = append(data, rec)
		case xml.EndElement:
			depth--
		}
	}

	if !sawRoot {
		return nil, fmt.Errorf("xml: missing <%s> root element", rootName(tag))
	}
	return data, nil
}

// Save encodes data as a document and overwrites path.
func (x *XML[T]) Save(path string, data []T) error {
	tag := tagOf[T]()

	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	root := xml.StartElement{Name: xml.Name{Local: rootName(tag)}}
	if err := enc.EncodeToken(root); err != nil {
		return err
	}
	for _, rec := range data {
		if err := enc.EncodeElement(rec, xml.StartElement{Name: xml.Name{Local: tag}}); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	buf.WriteByte('\n')

	return writeFile(path, buf.Bytes())
}
