package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inosmiPage = `
<html>
  <head><title>ИноСМИ</title><script>var x = "не текст";</script></head>
  <body>
    <nav>Главное меню</nav>
    <article class="article">
      <h1>Заголовок статьи</h1>
      <div class="article-meta">12:00 06.01.2020</div>
      <p>Первый абзац &laquo;с кавычками&raquo;.</p>
      <p>Второй<b>абзац</b> &amp; конец.</p>
      <aside>Читайте также</aside>
    </article>
    <footer>Подвал</footer>
  </body>
</html>`

func TestInosmiExtractsArticleBody(t *testing.T) {
	t.Parallel()

	text, err := Inosmi(inosmiPage)
	require.NoError(t, err)

	assert.Contains(t, text, "Заголовок статьи")
	assert.Contains(t, text, "Первый абзац «с кавычками».")
	assert.Contains(t, text, "& конец.")
	assert.NotContains(t, text, "Главное меню")
	assert.NotContains(t, text, "Читайте также")
	assert.NotContains(t, text, "12:00")
	assert.NotContains(t, text, "<")
}

func TestInosmiWithoutArticle(t *testing.T) {
	t.Parallel()

	_, err := Inosmi(`<html><body><p>nothing here</p></body></html>`)
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestGenericDropsChrome(t *testing.T) {
	t.Parallel()

	text, err := Generic(`<html><body><header>Шапка</header><p>Текст новости</p><footer>Подвал</footer></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "Текст новости", text)
}

func TestRegistryResolve(t *testing.T) {
	t.Parallel()

	reg := NewDefaultRegistry("example.com", "inosmi.ru")

	fn, ok := reg.Resolve("inosmi.ru")
	require.True(t, ok)
	require.NotNil(t, fn)

	_, ok = reg.Resolve("example.com")
	assert.True(t, ok)

	_, ok = reg.Resolve("yandex.ru")
	assert.False(t, ok)

	assert.Equal(t, []string{"example.com", "inosmi.ru"}, reg.Hosts())
}

func TestRegistryNormalizesHosts(t *testing.T) {
	t.Parallel()

	reg := NewDefaultRegistry("www.Example.com", "  ", "WWW.inosmi.ru")
	_, ok := reg.Resolve("example.com")
	assert.True(t, ok)

	reg.Register("www.lenta.ru", Generic)
	_, ok = reg.Resolve("lenta.ru")
	assert.True(t, ok)

	assert.Equal(t, []string{"example.com", "inosmi.ru", "lenta.ru"}, reg.Hosts())
}

func TestNilRegistryResolve(t *testing.T) {
	t.Parallel()

	var reg *Registry
	_, ok := reg.Resolve("inosmi.ru")
	assert.False(t, ok)
}
