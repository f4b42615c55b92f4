package fetch

import (
	"reflect"
	"testing"
)

const samplePage = `<html><body>
<ul>
  <li> 9月10日   一般参賀 </li>
  <li>9月11日 記帳</li>
</ul>
<table><tr><td>2025年10月1日 行事</td></tr></table>
<p>お知らせ</p>
<a href="/a">12月23日
天皇誕生日</a>
</body></html>`

func TestFragmentsAnchors(t *testing.T) {
	got := Fragments(samplePage, "a")
	want := []string{"12月23日 天皇誕生日"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestFragmentsBroadSelector(t *testing.T) {
	got := Fragments(samplePage, "li, td, p")
	want := []string{"9月10日 一般参賀", "9月11日 記帳", "2025年10月1日 行事", "お知らせ"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestFragmentsMalformedMarkup(t *testing.T) {
	// the html parser is lenient; garbage yields zero fragments, not an error
	if got := Fragments("<<<not html>>>", "a"); len(got) != 0 {
		t.Errorf("got %v", got)
	}
}

func TestFragmentsEmptyTextSkipped(t *testing.T) {
	got := Fragments(`<a href="/x"> </a><a href="/y">本文</a>`, "a")
	if !reflect.DeepEqual(got, []string{"本文"}) {
		t.Errorf("got %v", got)
	}
}
