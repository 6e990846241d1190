package router

import (
	"bytes"
	"context"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"

	"github.com/bobiko/huawei-router-api/internal/constants"
	"github.com/bobiko/huawei-router-api/internal/logger"
)

// GetTokensFromPage fetches <origin>/html/home.html and returns the verification tokens
// from its csrf_token meta elements, in document order.
// A page without such elements yields an empty slice; transport failures are returned unchanged.
func (c *ClientImpl) GetTokensFromPage(ctx context.Context) ([]string, error) {
	ctx, span := tracer().Start(ctx, "router.Client.GetTokensFromPage")
	defer span.End()

	homePageURL, err := url.JoinPath(c.origin, homePageURI)
	if err != nil {
		err = newRequestError(KindRequestError, "invalid home page URL", err)
		recordError(span, err)

		return nil, err
	}

	response, err := c.transport.Do(ctx, &Request{URL: homePageURL, Accepts: constants.MediaTypeHTML})
	if err != nil {
		recordError(span, err)

		return nil, err
	}

	tokens, err := ExtractTokens(response.Body)
	if err != nil {
		err = newRequestError(KindRequestError, "failed to read home page", err)
		recordError(span, err)

		return nil, err
	}

	span.SetAttributes(attribute.Int("csrf.tokens", len(tokens)))
	logger.Debugf(ctx, "Found %d verification tokens on %s", len(tokens), homePageURL)

	return tokens, nil
}

// ExtractTokens parses page as HTML and returns the content attribute of every
// meta[name=csrf_token] element in document order. Malformed markup is parsed
// leniently and simply yields fewer matches. A missing content attribute yields "".
func ExtractTokens(page []byte) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, err
	}

	selection := doc.Find(csrfTokenSelector)
	tokens := make([]string, 0, selection.Length())

	selection.Each(func(_ int, meta *goquery.Selection) {
		tokens = append(tokens, meta.AttrOr(csrfTokenAttribute, ""))
	})

	return tokens, nil
}
