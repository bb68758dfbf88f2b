package backend

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
)

// CreateProduct submits a new product as a multipart form, image included
// when present.
func (c *Client) CreateProduct(ctx context.Context, form ProductForm) error {
	return c.submitProduct(ctx, http.MethodPost, "/product", form)
}

// UpdateProduct replaces the product identified by id. An absent image
// leaves the stored one untouched.
func (c *Client) UpdateProduct(ctx context.Context, id string, form ProductForm) error {
	return c.submitProduct(ctx, http.MethodPut, "/product/"+id, form)
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/product/"+id, nil, nil)
	if err != nil {
		return err
	}
	return c.decode(ctx, resp, http.MethodDelete, "/product/"+id, nil)
}

func (c *Client) submitProduct(ctx context.Context, method, path string, form ProductForm) error {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	fields := map[string]string{
		"name":        form.Name,
		"description": form.Description,
		"prix":        strconv.FormatFloat(form.Price, 'f', -1, 64),
		"stock":       strconv.Itoa(form.Stock),
		"category":    form.Category,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("encode product form: %w", err)
		}
	}
	if form.Image != nil {
		fw, err := w.CreateFormFile("image", form.Image.Filename)
		if err != nil {
			return fmt.Errorf("encode product image: %w", err)
		}
		if _, err := fw.Write(form.Image.Content); err != nil {
			return fmt.Errorf("encode product image: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("encode product form: %w", err)
	}

	header := http.Header{}
	header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.do(ctx, method, path, body, header)
	if err != nil {
		return err
	}
	return c.decode(ctx, resp, method, path, nil)
}
