package capture

// Package capture holds the script injected into every document loaded by
// the content host. The script runs in the page's own execution context and
// relays download payloads to the host through the registered bridge binding.

import (
	"strconv"
	"strings"
)

// BindingName is the host function exposed to the page. The host registers
// it before any document runs; the script calls it with one JSON string.
const BindingName = "panelKioskBridge"

// Timing applied inside the script. Blob creation can lag behind the click
// and the href mutation, hence the settle delay and the bounded polling.
const (
	BlobSettleDelayMS  = 50
	HrefPollIntervalMS = 50
	HrefPollMaxChecks  = 20
)

// Script returns the capture script source with the bridge binding and the
// timing constants wired in
func Script() string {
	r := strings.NewReplacer(
		"__BRIDGE__", BindingName,
		"__SETTLE__", strconv.Itoa(BlobSettleDelayMS),
		"__POLL__", strconv.Itoa(HrefPollIntervalMS),
		"__MAXCHECKS__", strconv.Itoa(HrefPollMaxChecks),
	)
	return r.Replace(source)
}

const source = `(function() {
  if (window.__panelKioskCapture) { return; }
  window.__panelKioskCapture = true;

  function post(msg) {
    try { window.__BRIDGE__(JSON.stringify(msg)); } catch (e) {}
  }

  function fallbackName() {
    return 'download_' + Date.now();
  }

  // Retain blobs the page creates so they can be recovered without a refetch.
  var blobStore = new Map();
  var originalCreateObjectURL = URL.createObjectURL;
  URL.createObjectURL = function(blob) {
    var url = originalCreateObjectURL.call(this, blob);
    blobStore.set(url, blob);
    return url;
  };

  function sendBlobData(blob, filename) {
    var reader = new FileReader();
    reader.onloadend = function() {
      var base64data = String(reader.result).split(',')[1];
      post({
        type: 'blob_data',
        data: base64data,
        filename: filename,
        mimeType: blob.type || 'application/octet-stream'
      });
    };
    reader.onerror = function() {
      post({ type: 'blob_error', error: 'Failed to read blob' });
    };
    reader.readAsDataURL(blob);
  }

  function fetchAndSendBlob(url, filename) {
    post({ type: 'blob_processing' });
    if (blobStore.has(url)) {
      sendBlobData(blobStore.get(url), filename);
      return;
    }
    fetch(url)
      .then(function(response) { return response.blob(); })
      .then(function(blob) { sendBlobData(blob, filename); })
      .catch(function(error) {
        post({ type: 'blob_error', error: String(error && error.message || error) });
      });
  }

  function isCaptureURL(href) {
    return href.indexOf('blob:') === 0 || href.indexOf('data:') === 0;
  }

  // Track the most recently clicked element so href mutations can be
  // attributed to a user action.
  var lastClickedElement = null;
  document.addEventListener('click', function(e) {
    lastClickedElement = e.target;
  }, true);

  // Anchors whose href becomes a blob/data URL after the click.
  var observer = new MutationObserver(function(mutations) {
    mutations.forEach(function(mutation) {
      if (mutation.type !== 'attributes' || mutation.attributeName !== 'href') { return; }
      var target = mutation.target;
      if (target.tagName !== 'A') { return; }
      var href = target.getAttribute('href');
      if (!href || !isCaptureURL(href)) { return; }
      if (target === lastClickedElement || target.contains(lastClickedElement)) {
        var filename = target.getAttribute('download') || fallbackName();
        setTimeout(function() { fetchAndSendBlob(href, filename); }, __SETTLE__);
      }
    });
  });
  observer.observe(document.body, {
    attributes: true,
    attributeFilter: ['href'],
    subtree: true
  });

  // Anchors that already carry a blob/data href, or that have a download
  // attribute and an href still to come.
  document.addEventListener('click', function(e) {
    var target = e.target;
    while (target && target !== document) {
      if (target.tagName === 'A') {
        var href = target.getAttribute('href');
        var download = target.getAttribute('download');

        if (href && isCaptureURL(href)) {
          e.preventDefault();
          e.stopPropagation();
          fetchAndSendBlob(href, download || fallbackName());
          return false;
        }

        if (download !== null && !href) {
          e.preventDefault();
          e.stopPropagation();
          var anchor = target;
          var checkCount = 0;
          var checkInterval = setInterval(function() {
            var currentHref = anchor.getAttribute('href');
            checkCount++;
            if (currentHref && isCaptureURL(currentHref)) {
              clearInterval(checkInterval);
              fetchAndSendBlob(currentHref, anchor.getAttribute('download') || fallbackName());
            } else if (checkCount > __MAXCHECKS__) {
              clearInterval(checkInterval);
            }
          }, __POLL__);
          return false;
        }
        break;
      }
      target = target.parentElement;
    }
  }, false);

  // Popups that are really downloads get relayed instead of opened.
  var originalOpen = window.open;
  window.open = function(url, target, features) {
    if (url && (url.indexOf('download') !== -1 || url.indexOf('export') !== -1 || isCaptureURL(url))) {
      post({ type: 'download', url: url, filename: fallbackName() });
      return null;
    }
    return originalOpen.apply(this, arguments);
  };
})();`
