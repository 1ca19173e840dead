package handlers

import (
	"net/http"
	"net/url"
	"strconv"
)

// PageResponse - конверт списочных ответов.
type PageResponse struct {
	Count    int         `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// pageParams выбирает режим пагинации: по умолчанию постраничный с
// фиксированным размером, но если заданы одновременно limit и offset,
// включается limit/offset режим с параметрами клиента.
func (h *Handlers) pageParams(r *http.Request) (limit, offset int) {
	query := r.URL.Query()

	if query.Has("limit") && query.Has("offset") {
		limit, _ = strconv.Atoi(query.Get("limit"))
		if limit < 1 {
			limit = h.Cfg.PageSize
		}
		offset, _ = strconv.Atoi(query.Get("offset"))
		if offset < 0 {
			offset = 0
		}
		return limit, offset
	}

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}

	limit = h.Cfg.PageSize
	offset = (page - 1) * limit
	return limit, offset
}

// pageLinks строит абсолютные ссылки next/previous в том же стиле
// параметров, в котором пришёл запрос: limit/offset либо номер страницы.
func pageLinks(r *http.Request, limit, offset, total int) (next, prev *string) {
	makeLink := func(mutate func(q url.Values)) *string {
		u := *r.URL
		u.Scheme = requestScheme(r)
		u.Host = requestHost(r)

		q := u.Query()
		mutate(q)
		u.RawQuery = q.Encode()

		link := u.String()
		return &link
	}

	query := r.URL.Query()
	if query.Has("limit") && query.Has("offset") {
		if offset+limit < total {
			next = makeLink(func(q url.Values) {
				q.Set("limit", strconv.Itoa(limit))
				q.Set("offset", strconv.Itoa(offset+limit))
			})
		}
		if offset > 0 {
			prevOffset := offset - limit
			if prevOffset < 0 {
				prevOffset = 0
			}
			prev = makeLink(func(q url.Values) {
				q.Set("limit", strconv.Itoa(limit))
				q.Set("offset", strconv.Itoa(prevOffset))
			})
		}
		return next, prev
	}

	page := offset/limit + 1
	if offset+limit < total {
		next = makeLink(func(q url.Values) {
			q.Set("page", strconv.Itoa(page+1))
		})
	}
	if page > 1 {
		prev = makeLink(func(q url.Values) {
			// первая страница отдаётся без параметра page
			if page-1 == 1 {
				q.Del("page")
			} else {
				q.Set("page", strconv.Itoa(page-1))
			}
		})
	}

	return next, prev
}

func requestScheme(r *http.Request) string {
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		return proto
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func requestHost(r *http.Request) string {
	if host := r.Header.Get("X-Forwarded-Host"); host != "" {
		return host
	}
	return r.Host
}
