package sanitizer

import (
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

const (
	inosmiArticleSelectors = "article.article, div.article-body, div.layout-article"
	noiseSelectors         = "script, style, noscript, iframe, aside, form, .article-disclaimer, .article-meta, .article-tags, .social"
	genericNoiseSelectors  = "script, style, noscript, iframe, nav, header, footer, aside, form"
)

// bluemonday policies are safe for concurrent use once configured.
var stripPolicy = bluemonday.StrictPolicy().AddSpaceWhenStrippingTag(true)

// Inosmi extracts the article text of an inosmi.ru page.
func Inosmi(raw string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("parse document: %w", err)
	}

	article := doc.Find(inosmiArticleSelectors).First()
	if article.Length() == 0 {
		return "", ErrArticleNotFound
	}
	article.Find(noiseSelectors).Remove()

	return plainText(article)
}

// Generic extracts visible body text of any page.
func Generic(raw string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("parse document: %w", err)
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return "", ErrArticleNotFound
	}
	body.Find(genericNoiseSelectors).Remove()

	return plainText(body)
}

func plainText(sel *goquery.Selection) (string, error) {
	fragment, err := goquery.OuterHtml(sel)
	if err != nil {
		return "", fmt.Errorf("render fragment: %w", err)
	}
	text := html.UnescapeString(stripPolicy.Sanitize(fragment))
	return strings.Join(strings.Fields(text), " "), nil
}
